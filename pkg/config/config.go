// Package config holds the session configuration, loaded from the
// environment over built-in defaults.
package config

// Bank carries the business constants of a session. The defaults reproduce
// the classic teller rules: branch 0001, R$ 500.00 per withdrawal, three
// withdrawals per session.
type Bank struct {
	BranchCode            string  `envconfig:"BRANCH_CODE" default:"0001"`
	WithdrawalCeiling     float64 `envconfig:"WITHDRAWAL_CEILING" default:"500.00"`
	WithdrawalsPerSession int     `envconfig:"WITHDRAWALS_PER_SESSION" default:"3"`
}

// Log configures the session logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[minibank]"`
}

// App is the root configuration.
type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Bank *Bank  `envconfig:"BANK"`
	Log  *Log   `envconfig:"LOG"`
}
