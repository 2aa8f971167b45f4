package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/miekg/dns"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/zonegraph/pkg/record"
)

// ParseZoneFile parses an RFC 1035 zone file from filename
func ParseZoneFile(filename, origin string, onRecord OnRecordFN) error {
	reader, closeFn, err := openFile(filename)
	if err != nil {
		return err
	}
	defer closeFn()

	return parseZone(reader, origin, filename, onRecord)
}

// ParseZoneReader parses an RFC 1035 zone file passing every record set
// to onRecord. Resource records are grouped by owner name and type, sets
// are delivered in the order their first record appears.
//
// origin is used to complete relative names when the file has no
// $ORIGIN directive.
func ParseZoneReader(reader io.Reader, origin string, onRecord OnRecordFN) error {
	return parseZone(reader, origin, "", onRecord)
}

func parseZone(reader io.Reader, origin, filename string, onRecord OnRecordFN) error {
	if origin != "" {
		origin = dns.Fqdn(origin)
	}

	var (
		sets  []*record.RawRecord
		index = make(map[string]*record.RawRecord)
	)

	zp := dns.NewZoneParser(reader, origin, filename)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		header := rr.Header()
		recordType := dns.TypeToString[header.Rrtype]
		if recordType == "" {
			recordType = fmt.Sprintf("TYPE%d", header.Rrtype)
		}

		key := header.Name + "\x00" + recordType
		set, found := index[key]
		if !found {
			set = &record.RawRecord{Name: header.Name, Type: recordType}
			index[key] = set
			sets = append(sets, set)
		}
		set.ResourceRecords = append(set.ResourceRecords, record.ResourceRecord{Value: rdata(rr)})
	}
	if err := zp.Err(); err != nil {
		return fmt.Errorf("could not parse zone file: %w", err)
	}

	gologger.Verbose().Msgf("Grouped zone file into %d record sets\n", len(sets))

	for _, set := range sets {
		if err := onRecord(*set); err != nil {
			return err
		}
	}
	return nil
}

// rdata returns the presentation format of the RDATA of rr
func rdata(rr dns.RR) string {
	return strings.TrimPrefix(rr.String(), rr.Header().String())
}
