// Package jsonschema generates JSON Schema definitions from Go types via
// reflection. Tool input and output types are annotated with json and
// jsonschema struct tags; the resulting [Schema] values are advertised to the
// agent runtime through each tool's description.
package jsonschema
