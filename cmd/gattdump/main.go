package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/Natureshadow/OpenGoPro/ble"
)

func main() {
	app := cli.NewApp()

	app.Name = "gattdump"
	app.Usage = "inspect and dump GATT attribute tables"
	app.Version = "0.1.0"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:    "dump",
			Aliases: []string{"d"},
			Usage:   "Write a sample attribute table as CSV",
			Action:  dump,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "out, o", Value: "attributes.csv", Usage: "output file"},
			},
		},
		{
			Name:      "lookup",
			Aliases:   []string{"l"},
			Usage:     "Resolve a UUID against the assigned-UUID catalog",
			ArgsUsage: "<uuid>",
			Action:    lookup,
		},
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "List the assigned-UUID catalog",
			Action:  list,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dump(c *cli.Context) error {
	db := sampleDB()
	path := c.String("out")
	if err := db.DumpCSV(path); err != nil {
		return errors.Wrap(err, "can't dump attribute table")
	}
	fmt.Printf("wrote %d characteristics to %s\n", db.Characteristics.Len(), path)
	return nil
}

func lookup(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("lookup takes exactly one UUID argument")
	}
	u, err := ble.Parse(c.Args().First())
	if err != nil {
		return err
	}
	name, err := ble.LookupName(u)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", u.Canonical(), name)
	return nil
}

func list(c *cli.Context) error {
	ble.Assigned(func(u ble.UUID, name string) bool {
		fmt.Printf("%-36s  %s\n", u.Canonical(), name)
		return true
	})
	return nil
}

// sampleDB assembles the attribute table a typical peripheral exposes, with
// handles laid out the way discovery would assign them.
func sampleDB() *ble.DB {
	battery := ble.NewService(ble.BatteryUUID, ble.BatteryUUID.Name(), 0x0010)
	level := ble.NewCharacteristic(ble.BatteryLevelUUID, ble.BatteryLevelUUID.Name(),
		ble.CharRead|ble.CharNotify, 0x0011, 0x0012)
	level.Value = []byte{0x64}
	level.AddDescriptor(ble.NewDescriptor(ble.UUID16(uint16(ble.ClientCharConfig)), 0x0013, []byte{0x00, 0x00}))
	battery.AddCharacteristic(level)

	info := ble.NewService(ble.DeviceInfoUUID, ble.DeviceInfoUUID.Name(), 0x0020)
	manuf := ble.NewCharacteristic(ble.ManufacturerNameUUID, ble.ManufacturerNameUUID.Name(),
		ble.CharRead, 0x0021, 0x0022)
	manuf.Value = []byte("ACME")
	info.AddCharacteristic(manuf)
	info.AddCharacteristic(ble.NewCharacteristic(ble.ModelNumberUUID, ble.ModelNumberUUID.Name(),
		ble.CharRead, 0x0023, 0x0024))
	info.AddCharacteristic(ble.NewCharacteristic(ble.FirmwareRevisionUUID, ble.FirmwareRevisionUUID.Name(),
		ble.CharRead, 0x0025, 0x0026))

	return ble.NewDB([]*ble.Service{battery, info})
}
