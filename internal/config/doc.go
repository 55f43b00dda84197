// Package config provides configuration loading, merging, and validation
// for the hbnb server.
//
// Configuration is assembled from several sources. For each field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     first without overriding variables that are already set)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
