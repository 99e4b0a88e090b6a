// Package factorymethod demonstrates the Factory Method pattern.
//
// Factory Method is a creational design pattern that provides an interface for creating
// objects in a base type, but lets implementations alter the type of objects that will be
// created.
//
// Use it when:
//   - you need a common interface for multiple implementations
//   - you don't know beforehand the exact types and dependencies of the objects your code
//     should work with
//   - you want users of your library to be able to extend its internal components
//
// OS is the creator: each platform builds its own Message (the product) inside GreetUser.
// ClientCode only sees OS, so swapping the platform changes the behavior without touching
// the client:
//
//	factorymethod.ClientCode(os.Stdout, factorymethod.Windows{})
//	// Windows Notification: Windows is cool
//	// It's Windows
package factorymethod
