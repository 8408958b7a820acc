// Package models defines the persisted record types for the countries
// feature: the Country record set and the singleton RefreshMetadata row.
package models
