package configs

// HTTP defines configuration for the status and trigger API. Port selects
// the TCP port; zero disables the API.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
