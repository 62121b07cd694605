// petstorectl es un cliente de línea de comandos para la API de pet-store.
//
//	petstorectl [-addr URL] [-timeout D] <comando> [flags] [args]
//
// Comandos: list, get, save-store, add-employee, add-customer, delete.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pet-store/internal/domain/petstore"
	"pet-store/internal/platform/httpclient"
)

const defaultAddr = "http://localhost:8080"

var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// errUsage solo ya imprimió el usage
		if err != errUsage && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "petstorectl: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		return 2
	}
	return 1
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("petstorectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", envOr("PETSTORE_ADDR", defaultAddr), "URL base de la API")
	timeout := fs.Duration("timeout", httpclient.DefaultTimeout, "timeout por request")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: petstorectl [-addr URL] [-timeout D] <list|get|save-store|add-employee|add-customer|delete> ...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	c, err := httpclient.NewWithBaseURL(*addr, *timeout)
	if err != nil {
		return err
	}
	cli := &cli{client: c, out: stdout, errOut: stderr}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "list":
		return cli.list(ctx)
	case "get":
		return cli.get(ctx, rest)
	case "save-store":
		return cli.saveStore(ctx, rest)
	case "add-employee":
		return cli.addEmployee(ctx, rest)
	case "add-customer":
		return cli.addCustomer(ctx, rest)
	case "delete":
		return cli.deleteStore(ctx, rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return errUsage
	}
}

type cli struct {
	client *httpclient.Client
	out    io.Writer
	errOut io.Writer
}

func (c *cli) list(ctx context.Context) error {
	var out []petstore.StoreData
	if err := c.client.DoJSON(ctx, "GET", "/pet_store", nil, nil, &out); err != nil {
		return err
	}
	return c.print(out)
}

func (c *cli) get(ctx context.Context, args []string) error {
	id, err := storeIDArg(args)
	if err != nil {
		return err
	}

	var out petstore.StoreData
	if err := c.client.DoJSON(ctx, "GET", storePath(id), nil, nil, &out); err != nil {
		return err
	}
	return c.print(out)
}

func (c *cli) saveStore(ctx context.Context, args []string) error {
	fs := c.flagSet("save-store")
	id := fs.Int64("id", 0, "id de la tienda a actualizar (0 => crear)")
	name := fs.String("name", "", "nombre")
	address := fs.String("address", "", "dirección")
	city := fs.String("city", "", "ciudad")
	state := fs.String("state", "", "estado")
	zip := fs.String("zip", "", "código postal")
	phone := fs.String("phone", "", "teléfono")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := petstore.StoreData{
		PetStoreName:    *name,
		PetStoreAddress: *address,
		PetStoreCity:    *city,
		PetStoreState:   *state,
		PetStoreZip:     *zip,
		PetStorePhone:   *phone,
	}

	var out petstore.StoreData
	var err error
	if *id > 0 {
		err = c.client.DoJSON(ctx, "PUT", storePath(*id), nil, in, &out)
	} else {
		err = c.client.DoJSON(ctx, "POST", "/pet_store", nil, in, &out)
	}
	if err != nil {
		return err
	}
	return c.print(out)
}

func (c *cli) addEmployee(ctx context.Context, args []string) error {
	fs := c.flagSet("add-employee")
	id := fs.Int64("id", 0, "id de un empleado existente (0 => crear)")
	first := fs.String("first-name", "", "nombre")
	last := fs.String("last-name", "", "apellido")
	phone := fs.String("phone", "", "teléfono")
	title := fs.String("job-title", "", "puesto")
	if err := fs.Parse(args); err != nil {
		return err
	}
	storeID, err := storeIDArg(fs.Args())
	if err != nil {
		return err
	}

	in := petstore.EmployeeData{
		EmployeeID:        optionalID(*id),
		EmployeeFirstName: *first,
		EmployeeLastName:  *last,
		EmployeePhone:     *phone,
		EmployeeJobTitle:  *title,
	}

	var out petstore.EmployeeData
	if err := c.client.DoJSON(ctx, "POST", storePath(storeID)+"/employee", nil, in, &out); err != nil {
		return err
	}
	return c.print(out)
}

func (c *cli) addCustomer(ctx context.Context, args []string) error {
	fs := c.flagSet("add-customer")
	id := fs.Int64("id", 0, "id de un cliente existente (0 => crear)")
	first := fs.String("first-name", "", "nombre")
	last := fs.String("last-name", "", "apellido")
	email := fs.String("email", "", "email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	storeID, err := storeIDArg(fs.Args())
	if err != nil {
		return err
	}

	in := petstore.CustomerData{
		CustomerID:        optionalID(*id),
		CustomerFirstName: *first,
		CustomerLastName:  *last,
		CustomerEmail:     *email,
	}

	var out petstore.CustomerData
	if err := c.client.DoJSON(ctx, "POST", storePath(storeID)+"/customer", nil, in, &out); err != nil {
		return err
	}
	return c.print(out)
}

func (c *cli) deleteStore(ctx context.Context, args []string) error {
	id, err := storeIDArg(args)
	if err != nil {
		return err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.client.DoJSON(ctx, "DELETE", storePath(id), nil, nil, &out); err != nil {
		return err
	}
	fmt.Fprintln(c.out, out.Message)
	return nil
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	return fs
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func storeIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one pet store id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid pet store id %q", errUsage, args[0])
	}
	return id, nil
}

func storePath(id int64) string {
	return "/pet_store/" + strconv.FormatInt(id, 10)
}

func optionalID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
