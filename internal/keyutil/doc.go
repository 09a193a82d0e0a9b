// Package keyutil holds small key-adjacent string helpers: hex formatting,
// key-size labels and a minimum password length check. No crypto here.
package keyutil
