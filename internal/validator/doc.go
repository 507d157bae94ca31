// Package validator implements the three-layer validation pipeline of spec
// §4.8: structural, cryptographic, and policy checks combined by logical
// conjunction, with later layers short-circuited by an earlier failure.
package validator
