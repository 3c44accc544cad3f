package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion/internal/application/invoicing"
	"github.com/jhoicas/facturacion/internal/application/session"
	"github.com/jhoicas/facturacion/internal/domain"
	"github.com/jhoicas/facturacion/pkg/logger"
)

type view int

const (
	viewEntry view = iota
	viewInvoicing
)

// ShellConfig dependencias del shell interactivo.
type ShellConfig struct {
	In      io.Reader
	Out     io.Writer
	Gateway session.CredentialGateway
	Printer invoicing.TicketPrinter
	TaxRate decimal.Decimal
	Log     *logger.Logger
	Now     func() time.Time // nil = time.Now
}

// Shell sesión interactiva de terminal: vista de entrada (registro/login) y vista
// de facturación protegida por la sesión.
type Shell struct {
	cfg      ShellConfig
	out      io.Writer
	session  *session.Session
	invoice  *invoicing.InvoiceSession
	renderer *TableRenderer
	view     view
	log      *logger.Logger
}

// NewShell crea el shell en la vista de entrada, sin sesión.
func NewShell(cfg ShellConfig) *Shell {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Shell{
		cfg:      cfg,
		out:      cfg.Out,
		session:  session.New(cfg.Gateway),
		renderer: NewTableRenderer(cfg.Out),
		log:      log,
	}
}

// maxLineBytes longitud máxima de un comando; las líneas más largas se reportan y se descartan.
const maxLineBytes = 64 * 1024

type inputLine struct {
	text string
	err  error
}

// Run procesa comandos línea a línea hasta quit, fin de la entrada o cancelación de ctx.
// Los errores de los comandos se reportan y la sesión continúa.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	go readLines(ctx, s.cfg.In, lines)

	s.println("Facturación. Escribe 'help' para ver los comandos.")
	for {
		s.prompt()
		var line inputLine
		var ok bool
		select {
		case <-ctx.Done():
			s.println("")
			s.println("Hasta luego.")
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			s.println("")
			return nil
		}
		if line.err != nil {
			return line.err
		}
		if len(line.text) > maxLineBytes {
			fmt.Fprintf(s.out, "Línea demasiado larga (máximo %d bytes); se descartó.\n", maxLineBytes)
			continue
		}
		args := strings.Fields(line.text)
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			s.println("Hasta luego.")
			return nil
		}
		if s.view == viewInvoicing {
			s.invoicingCommand(ctx, args)
		} else {
			s.entryCommand(ctx, args)
		}
	}
}

// readLines entrega cada línea de in por out y cierra out al llegar a EOF.
// Corre en su propia goroutine para que la cancelación no espere a la entrada.
func readLines(ctx context.Context, in io.Reader, out chan<- inputLine) {
	defer close(out)
	r := bufio.NewReader(in)
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			select {
			case out <- inputLine{text: strings.TrimRight(text, "\r\n")}:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				select {
				case out <- inputLine{err: err}:
				case <-ctx.Done():
				}
			}
			return
		}
	}
}

func (s *Shell) prompt() {
	if s.view == viewInvoicing {
		fmt.Fprintf(s.out, "factura[%s]> ", s.session.DisplayName())
		return
	}
	fmt.Fprint(s.out, "facturacion> ")
}

func (s *Shell) println(msg string) { fmt.Fprintln(s.out, msg) }

func (s *Shell) report(err error) {
	if errors.Is(err, domain.ErrUnreachable) {
		s.log.Warn().Err(err).Msg("servicio de credenciales no disponible")
	} else {
		s.log.Debug().Err(err).Msg("comando rechazado")
	}
	s.println(userMessage(err))
}

// ── Vista de entrada ─────────────────────────────────────────────────────────

func (s *Shell) entryCommand(ctx context.Context, args []string) {
	switch args[0] {
	case "register":
		if len(args) != 3 {
			s.println("Uso: register <empresa> <contraseña>")
			return
		}
		if err := s.session.Register(ctx, args[1], args[2]); err != nil {
			s.report(err)
			return
		}
		s.println("Empresa registrada. Ahora puedes iniciar sesión.")
	case "login":
		if len(args) != 3 {
			s.println("Uso: login <empresa> <contraseña>")
			return
		}
		if err := s.session.Login(ctx, args[1], args[2]); err != nil {
			s.report(err)
			return
		}
		fmt.Fprintf(s.out, "Bienvenido, %s.\n", s.session.DisplayName())
		s.enterInvoicing()
	case "invoice":
		s.enterInvoicing()
	case "help":
		s.println(entryHelp)
	default:
		fmt.Fprintf(s.out, "Comando desconocido %q. Escribe 'help'.\n", args[0])
	}
}

// enterInvoicing abre la vista de facturación; sin sesión se queda en la entrada.
func (s *Shell) enterInvoicing() {
	if err := s.session.RequireAuthenticated(); err != nil {
		s.report(err)
		return
	}
	if s.invoice == nil {
		s.invoice = invoicing.NewInvoiceSession(invoicing.Config{
			TaxRate: s.cfg.TaxRate,
			Company: s.session.DisplayName(),
			Now:     s.cfg.Now,
		}, s.renderer, s.cfg.Printer, s.log)
	}
	s.view = viewInvoicing
	_ = s.invoice.Refresh()
}

// ── Vista de facturación ─────────────────────────────────────────────────────

func (s *Shell) invoicingCommand(ctx context.Context, args []string) {
	if err := s.session.RequireAuthenticated(); err != nil || s.invoice == nil {
		s.view = viewEntry
		s.invoice = nil
		s.println(userMessage(domain.ErrNotAuthenticated))
		return
	}

	switch args[0] {
	case "add":
		if len(args) < 4 {
			s.println("Uso: add <producto...> <cantidad> <precio>")
			return
		}
		n := len(args)
		name := strings.Join(args[1:n-2], " ")
		if _, err := s.invoice.AddProductInput(name, args[n-2], args[n-1]); err != nil {
			s.report(err)
		}
	case "remove":
		if len(args) != 2 {
			s.println("Uso: remove <fila>")
			return
		}
		row, err := strconv.Atoi(args[1])
		if err != nil {
			s.println("Error: la fila debe ser un número.")
			return
		}
		if err := s.invoice.RemoveProduct(row - 1); err != nil {
			_ = s.invoice.Refresh()
			s.report(err)
		}
	case "set":
		if len(args) < 3 {
			fmt.Fprintf(s.out, "Uso: set <campo> <valor> (campos: %s)\n", strings.Join(invoicing.HeaderFields, ", "))
			return
		}
		if err := s.invoice.SetHeaderField(args[1], strings.Join(args[2:], " ")); err != nil {
			s.report(err)
		}
	case "show":
		_ = s.invoice.Refresh()
	case "save":
		n, err := s.invoice.SaveInvoice()
		if err != nil {
			s.report(err)
			return
		}
		fmt.Fprintf(s.out, "Factura N° %d guardada.\n", n)
	case "print":
		s.print(ctx, args[1:])
	case "logout":
		s.session.Logout()
		s.invoice = nil
		s.view = viewEntry
		s.println("Sesión cerrada.")
	case "help":
		s.println(invoicingHelp)
	default:
		fmt.Fprintf(s.out, "Comando desconocido %q. Escribe 'help'.\n", args[0])
	}
}

func (s *Shell) print(ctx context.Context, args []string) {
	pdf, name, err := s.invoice.PrintInvoice(ctx)
	if err != nil {
		s.report(err)
		return
	}
	if len(args) > 0 {
		name = args[0]
	}
	if err := os.WriteFile(name, pdf, 0o644); err != nil {
		s.report(fmt.Errorf("guardar %s: %w", name, err))
		return
	}
	fmt.Fprintf(s.out, "Ticket guardado en %s.\n", name)
}

const entryHelp = `Comandos:
  register <empresa> <contraseña>  registra una empresa
  login <empresa> <contraseña>     inicia sesión y abre la factura
  invoice                          abre la factura (requiere sesión)
  help                             esta ayuda
  quit                             salir`

const invoicingHelp = `Comandos:
  add <producto...> <cantidad> <precio>  agrega una línea
  remove <fila>                          elimina la fila indicada
  set <campo> <valor>                    seller, role, customer, customer-id, date (AAAA-MM-DD)
  show                                   vuelve a mostrar la factura
  save                                   guarda y empieza una factura nueva
  print [archivo]                        genera el ticket PDF
  logout                                 cierra la sesión
  help                                   esta ayuda
  quit                                   salir`
