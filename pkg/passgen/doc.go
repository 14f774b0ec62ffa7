/*
Package passgen generates random passwords from the OS entropy pool.

Characters are selected with rejection sampling, so every character of an alphabet is equally likely.
Generate produces passwords that satisfy byteseal's strength gate: at least MinLength characters, with at least two characters of each class.
Glyphs that are easy to confuse (l, I, O, 0, 1) are left out of the classes.
*/
package passgen
