// Package domain contains the core domain types shared by the validation
// logic and its transports. They carry no infrastructure concerns.
package domain
