// SPDX-License-Identifier: MIT

// Package model defines the typed survey model shared by the generator and
// the validator: constructs and their items, hypothesized structural paths,
// and demographic variables.
//
// A Model is immutable request input. It is decoded once at the boundary
// (ParseRequest / LoadRequest accept YAML, JSON and TOML), checked once
// (ValidateRequest / ValidateModel collect every issue into a
// *ValidationError), and then handed to the numeric packages which never
// re-interpret loosely-typed input.
//
// Graph views the path list as a directed graph over construct names. It
// serves predecessor lookups (R²), two-hop mediation chains, the moderator
// candidate set and cycle reporting (DetectCycles). Cycles are legal input;
// they are reported, not rejected.
//
// Construct order is declaration order. Every deterministic iteration in
// the module (matrix indices, column order, report order) follows it.
package model
