package catalog

import (
	"github.com/sghaida/patterns/behavioral/strategy"
	"github.com/sghaida/patterns/creational/abstractfactory"
	"github.com/sghaida/patterns/creational/factorymethod"
	"github.com/sghaida/patterns/structural/composite"
	"github.com/sghaida/patterns/structural/decorator"
)

// Demo names registered by Default.
const (
	NameStrategy        = "strategy"
	NameAbstractFactory = "abstract-factory"
	NameFactoryMethod   = "factory-method"
	NameComposite       = "composite"
	NameDecorator       = "decorator"
)

// Default returns a registry holding the five catalogue demos.
func Default() *Registry {
	return NewRegistry().
		MustProvide(NameStrategy, strategy.Demo).
		MustProvide(NameAbstractFactory, abstractfactory.Demo).
		MustProvide(NameFactoryMethod, factorymethod.Demo).
		MustProvide(NameComposite, composite.Demo).
		MustProvide(NameDecorator, decorator.Demo)
}
