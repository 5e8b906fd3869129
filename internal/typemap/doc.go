// Package typemap loads the UML-to-Java type mapping table used by the
// code-generation templates.
//
// # Resource Format
//
// The mapping resource is a small XML document:
//
//	<mappings>
//	  <mapping>
//	    <from>String</from>
//	    <from>somda::Text</from>
//	    <to>java.lang.String</to>
//	  </mapping>
//	</mappings>
//
// Each mapping block carries zero or more "from" names and one "to" name.
// Blocks without a "to" name contribute nothing.
//
// # Normalization
//
// Every "from" name that does not start with the SoMDA namespace prefix
// ("somda::") gets it prepended, so "String" is stored as "somda::String".
// Normalization can be disabled with WithoutNamespace.
//
// The table is built once and never modified afterwards. It is safe for
// concurrent reads.
package typemap
