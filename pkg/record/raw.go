package record

// RawRecord is a single record set as exported by Route53.
// Optional fields are pointers so an absent value can be told apart
// from a zero one.
type RawRecord struct {
	Name            string           `json:"Name"`
	Type            string           `json:"Type"`
	SetIdentifier   string           `json:"SetIdentifier,omitempty"`
	AliasTarget     *AliasTarget     `json:"AliasTarget,omitempty"`
	ResourceRecords []ResourceRecord `json:"ResourceRecords,omitempty"`
	Weight          *int64           `json:"Weight,omitempty"`
	Region          *string          `json:"Region,omitempty"`
}

// AliasTarget is the alias section of a record set
type AliasTarget struct {
	DNSName string `json:"DNSName"`
}

// ResourceRecord is a single value of a record set
type ResourceRecord struct {
	Value string `json:"Value"`
}
