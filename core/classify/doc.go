// Package classify derives informative alignment positions from a labeled
// training alignment and scores query sequences against them.
//
// An informative position is a column whose dominant allele differs between
// the dark and light training groups, with both dominants drawn from
// {A,C,G,T}. The darkness score of a query is the fraction of its
// informative-site matches attributable to the dark allele.
//
// Build and Score are pure: the Model is immutable after Build, so any
// number of Score calls may run concurrently against the same Model.
package classify
