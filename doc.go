// Package patterns is a catalogue of classic object-oriented design patterns written
// as small, independent Go packages.
//
// Each package is self-contained and documents when the pattern is worth reaching for:
//
//   - behavioral/strategy: swap an arithmetic algorithm at runtime behind one Context
//   - creational/abstractfactory: Windows-like and macOS-like widget families
//   - creational/factorymethod: platforms that build their own notification messages
//   - structural/composite: a roof material calculator built as a tree of components
//   - structural/decorator: a drug record wrapped with optional attributes
//
// No pattern package depends on another pattern package; they share only
// internal/numfmt for number display. Package catalog registers one runnable demo
// per pattern, cmd/patterns exposes them on the command line and over HTTP, and
// examples/* holds one runnable main per pattern.
//
// Import
//
//	"github.com/sghaida/patterns/behavioral/strategy"
package patterns
