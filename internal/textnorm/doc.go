// Package textnorm standardizes raw recognition output so downstream
// comparisons are not skewed by cosmetic OCR noise.
//
// Normalization collapses whitespace runs, folds punctuation variants into a
// canonical comma or period, and strips everything outside letters, digits,
// spaces, periods, and commas. The transform is idempotent: normalizing an
// already-normalized string returns it unchanged.
package textnorm
