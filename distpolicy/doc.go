// Package distpolicy implements the distance-to-cost mapping used by the
// p-median dynamic program (package pmedian): how a raw tree distance
// between a leaf and its nearest medoid turns into an objective
// contribution.
//
// Without a coverage radius, cost(d) = d. With a finite radius r,
// cost(d) = min(d, r): a leaf farther than r from every medoid is treated
// as merely "uncovered", contributing exactly r rather than its true
// (possibly much larger) distance. A leaf already covered by a prior
// center always contributes 0, regardless of distance.
package distpolicy
