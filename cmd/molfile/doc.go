// 11 Oct 2026

/*
Molfile reads molecules in MDL mol (V2000) format.

Usage:
	molfile [--config file] [--log-level level] command [flags] [files]

Commands:
	dump [-f json|yaml|text] [-o output] [file]
	depict [-o out.png] [--width n] [--height n] [--margin n] [--hide-h] [file]
	formula [files...]
	stats [-r readers] [-o out.csv] files...

If no file is given, or the name is "-", we read stdin. Gzipped files
are recognised by their first bytes and read as if they were plain.

Every flag can also come from the environment with a MOLFILE_ prefix,
so MOLFILE_FORMAT=yaml is the same as -f yaml, or from a config file:
	format: text
	width: 600
	hide_h: true
	readers: 8
	log_level: debug

If a file is broken, the message says which block, line and field
broke, for example
	line 6: atom block: truncated atom block: want 5 lines, only 2 left

The exit status is 0 on success, 1 if anything went wrong. stats still
writes counts for the good files if some are broken.
*/
package main
