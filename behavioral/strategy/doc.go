// Package strategy demonstrates the Strategy pattern.
//
// Strategy is a behavioral design pattern that lets you define a family of algorithms,
// put each of them into a separate type, and make their values interchangeable.
//
// Use it when:
//   - you want to use different variants of an algorithm within an object and be able
//     to switch from one algorithm to another at runtime
//   - you have a lot of similar types that only differ in the way they execute some behavior
//
// Here the family is the four binary arithmetic operations. A Context holds exactly one
// of them and delegates Calculate to it:
//
//	ctx := strategy.NewContext(strategy.Add{})
//	ctx.Calculate(2, 2) // 4
//	ctx.SetStrategy(strategy.Divide{})
//	ctx.Calculate(4, 1) // 4
//
// Divide does not guard the divisor; 4/0 is +Inf and 0/0 is NaN.
package strategy
