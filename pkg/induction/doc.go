/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: doc.go
Description: Package documentation for rule induction.
*/

// Package induction derives minimal, fully consistent decision rules from an
// encoded decision table.
//
// Three algorithms are provided:
//
//   - Covering: sequential covering by increasing rule length; each row is
//     explained by the first consistent attribute combination (lexicographic
//     order) and every row covered by the accepted rule is eliminated.
//   - Exhaustive: builds the discernibility matrix and enumerates, for every
//     row, all consistent conditions that no already accepted rule generalizes.
//   - LEM2: per decision class, greedily grows a condition from the most
//     frequent attribute=value pair until it is consistent.
//
// All algorithms are deterministic, single threaded and never mutate the table.
// Output order and tie-breaks are part of the contract: the same table always
// yields the same rule sequence.
//
// Rows that no consistent rule can explain (identical conditions carrying
// different decisions) are reported in Result.Unexplained instead of looping
// or failing; callers decide whether that is an error.
//
// Exhaustive is exponential in the number of attributes and meant for small
// attribute sets.
package induction
