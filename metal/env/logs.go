package env

type LogsEnvironment struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	Dir        string `validate:"required"`
	DateFormat string `validate:"required"`
}

type SentryEnvironment struct {
	DSN string `validate:"omitempty,url"`
	CSP string `validate:"omitempty"`
}
