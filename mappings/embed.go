// Package mappings bundles the default UML-to-Java type mapping resource.
package mappings

import "embed"

// JavaMappingsFile is the name of the bundled mapping resource in FS.
const JavaMappingsFile = "JavaMappings.xml"

//go:embed JavaMappings.xml
var FS embed.FS
