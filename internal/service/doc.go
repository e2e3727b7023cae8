// Package service contains the application services that orchestrate
// domain entities and stores on behalf of the API layer.
package service
