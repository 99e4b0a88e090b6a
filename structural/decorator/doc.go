// Package decorator demonstrates the Decorator pattern on a pharmacy drug record.
//
// Decorator is a structural design pattern that lets you attach new behavior to an object
// by placing it inside a wrapper that exposes the same interface.
//
// A Base drug describes itself by name and price. ExpirationDate, Dosage and Manufacturer
// each wrap a Drug, ask it for its Info first and append one clause. Wrappers stack in the
// order they are applied and cannot be removed afterwards.
package decorator
