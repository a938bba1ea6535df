package common

// PycheckVersion is the current pycheck version as a string.
const PycheckVersion string = "0.1.0"

// ConfigFileName is the name of the optional per-project configuration file.
const ConfigFileName string = "pycheck.toml"

// SourceFileExt is the file extension for a Python source file.
const SourceFileExt string = ".py"
