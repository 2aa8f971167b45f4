package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/projectdiscovery/zonegraph/pkg/record"
)

// OnRecordFN is called for every record set found in the input
type OnRecordFN func(raw record.RawRecord) error

// recordSetsField is the top level field of a Route53 export
const recordSetsField = "ResourceRecordSets"

var errStopped = errors.New("stopped by callback")

// ParseFile parses a Route53 JSON export from filename
func ParseFile(filename string, onRecord OnRecordFN) error {
	reader, closeFn, err := openFile(filename)
	if err != nil {
		return err
	}
	defer closeFn()

	return ParseReader(reader, onRecord)
}

// ParseReader parses a Route53 JSON export passing every record set in
// document order to onRecord.
//
// The export is either an object with a ResourceRecordSets array or a
// bare array of record sets. Other top level fields are skipped.
func ParseReader(reader io.Reader, onRecord OnRecordFN) error {
	iter := jsoniter.Parse(jsoniter.ConfigCompatibleWithStandardLibrary, bufio.NewReader(reader), 4096)

	var callbackErr error
	readRecords := func(iter *jsoniter.Iterator) {
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			var raw record.RawRecord
			iter.ReadVal(&raw)
			if iter.Error != nil {
				return false
			}
			if err := onRecord(raw); err != nil {
				callbackErr = err
				iter.ReportError("ParseReader", errStopped.Error())
				return false
			}
			return true
		})
	}

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		readRecords(iter)
	case jsoniter.ObjectValue:
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			if field != recordSetsField {
				iter.Skip()
				return iter.Error == nil
			}
			readRecords(iter)
			return iter.Error == nil
		})
	default:
		if iter.Error != nil && iter.Error != io.EOF {
			return fmt.Errorf("could not read route53 export: %w", iter.Error)
		}
		return errors.New("route53 export is neither an object nor an array")
	}

	if callbackErr != nil {
		return callbackErr
	}
	// A complete document never reads past its closing bracket, so
	// io.EOF here means the input was truncated.
	if iter.Error != nil {
		return fmt.Errorf("could not read route53 export: %w", iter.Error)
	}
	return nil
}
