package decorator

import (
	"fmt"
	"io"
)

// DefaultPrice is the price every form-built drug starts with.
const DefaultPrice = 10

// Features are the form inputs. Empty optional fields are skipped.
type Features struct {
	Name         string
	Expiration   string
	Dosage       string
	Manufacturer string
}

// Option wraps a drug in one more layer.
type Option func(Drug) Drug

// Chain applies opts in order; the last option ends up outermost.
func Chain(d Drug, opts ...Option) Drug {
	for _, opt := range opts {
		if opt != nil {
			d = opt(d)
		}
	}
	return d
}

// Options converts the non-empty optional fields into wrappers, always in the order
// expiration, dosage, manufacturer.
func (f Features) Options() []Option {
	var opts []Option
	if f.Expiration != "" {
		opts = append(opts, func(d Drug) Drug { return WithExpirationDate(d, f.Expiration) })
	}
	if f.Dosage != "" {
		opts = append(opts, func(d Drug) Drug { return WithDosage(d, f.Dosage) })
	}
	if f.Manufacturer != "" {
		opts = append(opts, func(d Drug) Drug { return WithManufacturer(d, f.Manufacturer) })
	}
	return opts
}

// ApplyFeatures builds the decorated drug for one form submission.
func ApplyFeatures(f Features) Drug {
	return Chain(NewDrug(f.Name, DefaultPrice), f.Options()...)
}

// Demo prints a drug with no extras and then with every extra.
func Demo(w io.Writer) error {
	samples := []Features{
		{Name: "Аспірин"},
		{Name: "Аспірин", Expiration: "2025", Dosage: "500mg", Manufacturer: "Bayer"},
	}
	for _, f := range samples {
		if _, err := fmt.Fprintln(w, ApplyFeatures(f).Info()); err != nil {
			return err
		}
	}
	return nil
}
