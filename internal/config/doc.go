// Package config resolves the UI test harness settings from environment
// variables (optionally seeded from a dotenv file) into an immutable Settings
// value for one of three profiles: development, production or testing. It
// also derives the launch and context options handed to the browser driver.
package config
