// Package display formats device and gateway identifiers for logs.
// By default identifiers are scrambled to their last five characters;
// setting TUYA_FULL_DISPLAY to any non-empty value prints them in
// full, the same environment-gated trade-off the original client used
// between readable logs and not leaking device IDs into them.
package display
