package decorator

import "github.com/sghaida/patterns/internal/numfmt"

// Drug is implemented by the base record and every wrapper.
type Drug interface {
	Name() string
	Price() float64
	Info() string
}

// Base is the undecorated drug.
type Base struct {
	name  string
	price float64
}

// NewDrug returns a base drug.
func NewDrug(name string, price float64) *Base {
	return &Base{name: name, price: price}
}

func (b *Base) Name() string   { return b.name }
func (b *Base) Price() float64 { return b.price }

// Info returns "Назва: <name>, Ціна: <price>".
func (b *Base) Info() string {
	return "Назва: " + b.name + ", Ціна: " + numfmt.Format(b.price)
}

// wrapper forwards Name and Price to the wrapped drug.
type wrapper struct {
	Drug
}

// ExpirationDate appends the shelf-life clause.
type ExpirationDate struct {
	wrapper
	ExpirationDate string
}

// WithExpirationDate wraps d.
func WithExpirationDate(d Drug, date string) *ExpirationDate {
	return &ExpirationDate{wrapper: wrapper{d}, ExpirationDate: date}
}

func (e *ExpirationDate) Info() string {
	return e.Drug.Info() + ". Термін придатності: " + e.ExpirationDate
}

// Manufacturer appends the manufacturer clause.
type Manufacturer struct {
	wrapper
	Manufacturer string
}

// WithManufacturer wraps d.
func WithManufacturer(d Drug, manufacturer string) *Manufacturer {
	return &Manufacturer{wrapper: wrapper{d}, Manufacturer: manufacturer}
}

func (m *Manufacturer) Info() string {
	return m.Drug.Info() + ". Виробник: " + m.Manufacturer
}

// Dosage appends the dosage clause.
type Dosage struct {
	wrapper
	Dosage string
}

// WithDosage wraps d.
func WithDosage(d Drug, dosage string) *Dosage {
	return &Dosage{wrapper: wrapper{d}, Dosage: dosage}
}

func (s *Dosage) Info() string {
	return s.Drug.Info() + ". Дозування: " + s.Dosage
}
