// Package abstractfactory demonstrates the Abstract Factory pattern.
//
// Abstract Factory is a creational design pattern that lets you produce families of
// related objects without specifying their concrete types.
//
// Use it when:
//   - your code needs to work with various families of related products, but you don't
//     want it to depend on the concrete types of those products (they might be unknown
//     beforehand, or you want to allow for future extensibility)
//   - you want to make sure the products you get from a factory are compatible with each other
//
// Two widget families are provided, Windows-like and macOS-like. Each factory produces a
// matching button and checkbox as HTML element nodes; every call builds a fresh node.
package abstractfactory
