// Package calc implements an exact decimal calculator for infix arithmetic.
//
// Expressions are built from decimal numbers, the binary operators
// + - * / % ^, unary + and -, and parentheses. "2 + 3 * 4" is 14 and
// "0.1 + 0.2" is exactly 0.3, because every value is a rational number rather
// than a binary float. All binary operators are left-associative, including
// exponentiation: "2^3^2" is "(2^3)^2". Unary minus binds looser than an
// exponentiation to its right, so "-2^2" is "-(2^2)".
//
// Evaluation runs in three stages, each usable on its own: Lex turns text into
// tokens, Parse arranges tokens into a tree, and Eval reduces the tree to a
// number. Evaluate runs all three.
package calc
