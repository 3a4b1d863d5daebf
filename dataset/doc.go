// Package dataset turns tabular CSV data into feature and target matrices
// for the mlp package.
//
// It provides OneHot for categorical fields, LoadHeart for the
// heart-disease record layout (13 fields in, 21 features out) and Split for
// a contiguous, unshuffled train/test partition. Normalization is left to
// matrix.NormalizeColumns so callers choose when to apply it.
package dataset
