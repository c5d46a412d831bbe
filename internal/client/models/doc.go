// Package models defines the wire types exchanged with the dashboard API.
package models
