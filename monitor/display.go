package monitor

import (
	"fmt"
	"strings"

	"github.com/ezrec/brookshear/bank"
	"github.com/ezrec/brookshear/translate"
)

const (
	DISPLAY_COLUMNS = 16 // Cells per display row.
)

// table renders a bank as rows of DISPLAY_COLUMNS hex cells, each row
// headed by the address of its first cell.
func table(b *bank.Bank) string {
	var sb strings.Builder

	columns := min(DISPLAY_COLUMNS, b.Len())
	sb.WriteString("   |")
	for n := range columns {
		fmt.Fprintf(&sb, " %2x", n)
	}
	sb.WriteString("\n")

	for addr, value := range b.All() {
		if addr%DISPLAY_COLUMNS == 0 {
			if addr != 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%02x |", addr)
		}
		fmt.Fprintf(&sb, " %02x", value)
	}
	sb.WriteString("\n")

	return sb.String()
}

// Display writes the machine state: memory, registers, the instruction
// pointer and the instruction it points at.
func (mon *Monitor) Display() {
	cp := mon.emu.Cpu

	translate.Fprintf(mon.out, "memory (%d cells)\n", cp.Memory.Len())
	fmt.Fprint(mon.out, table(cp.Memory))
	translate.Fprintf(mon.out, "registers (%d)\n", cp.Register.Len())
	fmt.Fprint(mon.out, table(cp.Register))

	code, ok := mon.emu.Code()
	if ok {
		translate.Fprintf(mon.out, "ip %02x: %v %v\n", cp.Ip, code, code.Mnemonic())
	} else {
		translate.Fprintf(mon.out, "ip %02x: %v\n", cp.Ip, mon.emu.State())
	}
}
