// 11 Oct 2026
// molfile reads MDL mol files. All the work is in pkg/molcmd.

package main

import (
	"os"

	"github.com/andrew-torda/molfile/pkg/molcmd"
)

func main() {
	os.Exit(molcmd.Execute())
}
