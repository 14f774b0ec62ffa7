/*
Package passlock locks a file into a self-describing, password protected container, and unlocks it again.

# How it works:

A 16 byte salt and a 12 byte IV are generated from the OS entropy source for every container.
An AES-256 key is derived from the passphrase and salt with PBKDF2-SHA256, using the iteration count implied by the container's format generation (see the format package).
The iteration count is never stored in the container, so changing it requires a new format generation.

The payload is the file metadata as JSON, prefixed by its length as a big-endian uint32, followed by the raw file bytes.
The payload is encrypted with AES-256-GCM, with no additional authenticated data, and the GCM tag is appended to the cipher text.

# Container layout:

	offset  length  field
	0       8       magic, null padded ASCII
	8       1       protocol version
	9       16      salt
	25      12      IV
	37      rest    AES-GCM cipher text and tag

# General guidelines:
  - Lock always writes the active format. Unlock accepts every registered format.
  - A wrong passphrase and a corrupted container are indistinguishable, both are reported as ErrDecryptionFailed.
  - Everything is held in memory, this package doesn't stream. AES-GCM also limits a single container to about 64GB.
  - Key derivation is deliberately slow and can't be interrupted. Use LockContext or UnlockContext to stop waiting on it.
*/
package passlock
