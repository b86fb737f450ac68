package config

// Usage is the usage block shared by the help text and usage errors
const Usage = `================================================
Usage: minigrep [query] [filename] [options]

Options:
  -c: Case insensitive search
  -h: Help
================================================`

// HelpTitle is printed above Usage when help is requested
const HelpTitle = "minigrep: a tool to search for stuff in files"
