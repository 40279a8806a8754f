// pacientesctl administra pacientes desde la terminal usando la API JSON.
//
//	pacientesctl [-api URL] list
//	pacientesctl [-api URL] get -id ID
//	pacientesctl [-api URL] add -nombre N -propietario P -email E -fecha F -sintomas S
//	pacientesctl [-api URL] edit -id ID -nombre N ...
//	pacientesctl [-api URL] delete -id ID
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"vet-patient-tracker/internal/apiclient"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("pacientesctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	apiURL := global.String("api", envOr("PACIENTES_API", "http://localhost:8080"), "base URL de la API")
	timeout := global.Duration("timeout", apiclient.DefaultTimeout, "timeout por request")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: pacientesctl [-api URL] list|get|add|edit|delete [flags]")
		return 2
	}

	client, err := apiclient.New(*apiURL, *timeout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+time.Second)
	defer cancel()

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "list":
		err = listCmd(ctx, client, stdout)
	case "get":
		err = getCmd(ctx, client, rest, stdout, stderr)
	case "add":
		err = saveCmd(ctx, client, rest, false, stdout, stderr)
	case "edit":
		err = saveCmd(ctx, client, rest, true, stdout, stderr)
	case "delete":
		err = deleteCmd(ctx, client, rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return 2
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func listCmd(ctx context.Context, c *apiclient.Client, out io.Writer) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No hay pacientes")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMASCOTA\tPROPIETARIO\tEMAIL\tFECHA\tSINTOMAS")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Nombre, p.Propietario, p.Email, p.Fecha, p.Sintomas)
	}
	return tw.Flush()
}

func getCmd(ctx context.Context, c *apiclient.Client, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(errOut)
	id := fs.String("id", "", "id del paciente")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	p, err := c.Get(ctx, *id)
	if err != nil {
		return err
	}
	printPatient(out, p)
	return nil
}

func saveCmd(ctx context.Context, c *apiclient.Client, args []string, edit bool, out, errOut io.Writer) error {
	name := "add"
	if edit {
		name = "edit"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)

	var f apiclient.Fields
	id := fs.String("id", "", "id del paciente (solo edit)")
	fs.StringVar(&f.Nombre, "nombre", "", "nombre de la mascota")
	fs.StringVar(&f.Propietario, "propietario", "", "nombre del propietario")
	fs.StringVar(&f.Email, "email", "", "email de contacto")
	fs.StringVar(&f.Fecha, "fecha", "", "fecha de la cita")
	fs.StringVar(&f.Sintomas, "sintomas", "", "síntomas")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		p   apiclient.Patient
		err error
		msg = "Paciente agregado correctamente"
	)
	if edit {
		if *id == "" {
			return errors.New("-id is required")
		}
		p, err = c.Update(ctx, *id, f)
		msg = "Paciente actualizado correctamente"
	} else {
		p, err = c.Create(ctx, f)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, msg)
	printPatient(out, p)
	return nil
}

func deleteCmd(ctx context.Context, c *apiclient.Client, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(errOut)
	id := fs.String("id", "", "id del paciente")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	if err := c.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintln(out, "Paciente eliminado correctamente")
	return nil
}

func printPatient(out io.Writer, p apiclient.Patient) {
	fmt.Fprintf(out, "id:          %s\n", p.ID)
	fmt.Fprintf(out, "mascota:     %s\n", p.Nombre)
	fmt.Fprintf(out, "propietario: %s\n", p.Propietario)
	fmt.Fprintf(out, "email:       %s\n", p.Email)
	fmt.Fprintf(out, "fecha:       %s\n", p.Fecha)
	fmt.Fprintf(out, "sintomas:    %s\n", p.Sintomas)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
