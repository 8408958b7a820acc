// Package summary renders and stores the post-refresh summary image.
//
// After each committed refresh the countries service hands this package the
// top-N records by estimated GDP plus the total count and timestamp. The
// sink renders a PNG card and uploads it to object storage, where the image
// route serves it from. Publishing is best effort: a sink failure never
// fails the refresh that produced the data.
package summary
