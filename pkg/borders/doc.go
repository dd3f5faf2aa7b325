// Package borders provides the outline shapes that decorations are painted
// into.
//
// Every outline implements [ShapeBorder]: it can describe its outer and
// inner edges as paths for a given rect, paint its own stroke, report how
// far it insets content, and interpolate toward other outlines. Outlines of
// different kinds morph where a geometric relationship exists (a rounded
// rectangle and a circle, for example) and otherwise switch halfway.
//
// Outlines are stacked with [Add], which merges compatible borders and
// otherwise nests them, painting from the outside in.
package borders
