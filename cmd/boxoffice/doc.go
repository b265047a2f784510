// Command boxoffice is the command-line front end for OMDb lookups.
//
// It searches titles, shows full records with a normalized rating summary,
// converts individual rating strings, and manages the TOML configuration
// file that holds the OMDb API key.
package main
