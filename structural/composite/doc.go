// Package composite demonstrates the Composite pattern with a roof material calculator.
//
// Composite is a structural design pattern that lets you compose objects into tree
// structures and then work with these structures as if they were individual objects.
//
// Use it when:
//   - you have to implement a tree-like object structure
//   - you want client code to treat both simple and complex elements uniformly
//
// RoofType is the composite node; roof shapes and covering materials are leaves. Each leaf
// computes its share from the same RoofParams and the composite sums its children.
package composite
