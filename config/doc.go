// Package config loads the metroroute YAML configuration.
//
// A file is decoded over Default, so it only needs the keys it changes, and
// is then validated with go-playground/validator struct tags:
//
//	network:
//	  transferPenalty: 240
//	  shuntWeight: 120
//	  shuntLine: R
//	  manualTransfers:
//	    - {from: Noviciado, to: Plaza de España}
//	  shunts:
//	    - {from: Opera, to: Principe Pio}
//	routing:
//	  defaultK: 3
//	  maxK: 10
//	  maxExpansions: 200000
//	  maxHops: 0
//	  parallelism: 0
//	  timeoutMS: 5000
//	  avoid: []            # edge kinds never used: line, transfer, shunt
//	server:
//	  addr: ":8080"
//	data:
//	  path: network.yml
//	log:
//	  level: info
//
// METROROUTE_ADDR and METROROUTE_DATA override server.addr and data.path
// (ApplyEnv); the command reads METROROUTE_CONFIG for the file location.
package config
