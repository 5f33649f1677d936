package ble

import (
	"encoding/csv"
	"encoding/hex"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// csvHeader is the fixed column layout of an attribute-table dump.
var csvHeader = []string{"handle", "description", "uuid", "properties", "value"}

// declRowUUID is the literal the characteristic declaration row carries in
// its uuid column.
const declRowUUID = "28:03"

// WriteCSV serializes the table to w, one row per attribute: for each
// service (in discovery order) a service row, then per characteristic a
// declaration row, a value row, and one row per descriptor. Handles are
// decimal; raw values are lower-case hex, empty when absent. It fails when a
// descriptor's UUID is not a spec-defined declaration number.
func (db *DB) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "can't write CSV header")
	}
	for _, s := range db.Services {
		name := s.Name
		if name == "" {
			name = "unknown"
		}
		row := []string{
			strconv.Itoa(int(s.StartHandle)),
			PrimaryService.Name(),
			s.UUID.Canonical(),
			name,
			"SERVICE",
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "can't write row for service %s", s.UUID)
		}
		for _, c := range s.Characteristics {
			if err := writeCharacteristic(cw, c); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "can't flush CSV")
}

func writeCharacteristic(cw *csv.Writer, c *Characteristic) error {
	decl := []string{
		strconv.Itoa(int(c.Handle)),
		CharDeclaration.Name(),
		declRowUUID,
		c.Properties.String(),
		"",
	}
	if err := cw.Write(decl); err != nil {
		return errors.Wrapf(err, "can't write declaration row for %s", c.UUID)
	}
	name := c.Name
	if name == "" {
		name = "unknown"
	}
	value := []string{
		strconv.Itoa(int(c.ValueHandle)),
		name,
		c.UUID.Canonical(),
		"",
		hex.EncodeToString(c.Value),
	}
	if err := cw.Write(value); err != nil {
		return errors.Wrapf(err, "can't write value row for %s", c.UUID)
	}
	for _, d := range c.Descriptors {
		desc, err := DeclarationName(d.UUID)
		if err != nil {
			return err
		}
		row := []string{
			strconv.Itoa(int(d.Handle)),
			desc,
			d.UUID.Canonical(),
			"",
			hex.EncodeToString(d.Value),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "can't write descriptor row for %s", d.UUID)
		}
	}
	return nil
}

// DumpCSV writes the table to the named file, creating or truncating it.
func (db *DB) DumpCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can't create %s", path)
	}
	defer f.Close()

	log.WithField("file", path).Debug("dumping discovered attribute table")
	return db.WriteCSV(f)
}
