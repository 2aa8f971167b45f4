// Package parser reads DNS zone exports into raw record sets.
//
// Two formats are supported. The Route53 JSON export, as written by
// `aws route53 list-resource-record-sets`, is streamed record by record
// so large zones are never decoded into one big document. RFC 1035 zone
// files are read with a zone parser and resource records sharing an owner
// name and type are grouped into a single record set, which is how
// Route53 models them as well.
//
// Inputs ending in .gz are decompressed on the fly.
package parser
