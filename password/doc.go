// Package password hashes and verifies account passwords with Argon2id,
// using the PHC string encoding so parameters travel with each hash. Policy
// decisions (minimum length, complexity) belong to the credential package;
// this one only turns accepted passwords into verifiable records.
package password
