// Package services implements the driving ports defined in ports/driving.
//
// Services orchestrate domain logic using driven ports for infrastructure.
// The filter/sort engine in derive.go is pure; everything else wraps it
// with session state.
package services
