/*
Package format is the registry of container formats understood by byteseal.

Every container starts with an 8 byte magic value followed by a single protocol version byte.
The magic identifies the format generation, and the version byte must agree with the generation's declared version.

# Generations:
  - FileSeal v1, magic "FILESEAL", version 1. Legacy, only read.
  - Cryptex v2.1, magic "CRYPTEX\x00", version 2. Active, used for all new containers.

Adding a generation means adding a Descriptor to the table and moving the active pointer to it.
Older descriptors are never removed, so existing containers can always be opened.
The key derivation parameters are implied by the generation and are never stored in a container.
*/
package format
