// Command patterns runs the design pattern catalogue from the terminal or as a small
// web server.
//
// Usage
//
//	patterns list                         list the demos
//	patterns run <demo>                   run one demo (strategy, abstract-factory, ...)
//	patterns strategy --op divide 4 0     run one strategy on two numbers
//	patterns abstract-factory macos       render a widget family
//	patterns factory-method linux         greet from a platform
//	patterns composite --roof-type single-slope --material tile --width 10 --length 20
//	patterns decorator --name X --expiration 2025 --dosage 5mg
//	patterns serve --config patterns.yaml start the HTTP front end
//
// serve reads configuration from the optional YAML file and PATTERNS_* environment
// variables (see internal/config). Every other subcommand writes to stdout and needs
// no configuration.
package main
