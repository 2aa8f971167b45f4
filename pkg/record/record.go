package record

import (
	"strconv"
	"strings"
)

// Record is the normalized form of a RawRecord.
type Record struct {
	// Name is the owner name of the record set
	Name string
	// Type is the record type, ex. A, CNAME
	Type string
	// Alias is set when the record set carries an alias target
	Alias bool
	// AliasTarget is the name the record points to
	AliasTarget string
	// ResourceValues contains the plain values of the record set in order.
	// It is always empty for aliases.
	ResourceValues []string
	// RoutingDescriptor describes the weight and/or latency region of the
	// record, ex. "w:10" or "lat:us-east-1". Empty if neither is set.
	RoutingDescriptor string
}

// Normalize converts a raw record set into a Record.
//
// When an alias target is present the resource values are not read.
// Weight and region are not checked for exclusivity, both are rendered
// when both are set.
func Normalize(raw RawRecord) Record {
	record := Record{
		Name: raw.Name,
		Type: raw.Type,
	}

	if raw.AliasTarget != nil {
		record.Alias = true
		record.AliasTarget = raw.AliasTarget.DNSName
	} else {
		for _, resource := range raw.ResourceRecords {
			record.ResourceValues = append(record.ResourceValues, resource.Value)
		}
	}

	record.RoutingDescriptor = routingDescriptor(raw.Weight, raw.Region)
	return record
}

// NormalizeAll normalizes a list of raw records keeping their order
func NormalizeAll(raws []RawRecord) []Record {
	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Normalize(raw))
	}
	return records
}

func routingDescriptor(weight *int64, region *string) string {
	var parts []string
	if weight != nil {
		parts = append(parts, "w:"+strconv.FormatInt(*weight, 10))
	}
	if region != nil {
		parts = append(parts, "lat:"+*region)
	}
	return strings.Join(parts, ", ")
}
