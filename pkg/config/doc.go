/*
Package config holds the pet's configuration as sections of options.

Values are kept raw (section -> option -> value) so that any store can feed them:
YAML files decode to typed values, redis hashes decode to strings. Typed getters
coerce on read with weak decoding, so "true" and true are both a valid bool.

The Config is safe for concurrent use, but the engine expects every mutation to
happen on the dispatch sequence, followed by an explicit UpdateConfig on the pet.
*/
package config
