// Package prompt collects PARSEC parameters interactively. The Driver
// interface hides the terminal; SurveyDriver implements it with survey and
// tests script answers through a stub.
package prompt
