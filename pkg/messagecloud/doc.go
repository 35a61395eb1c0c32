// Package messagecloud builds and sends messages to the MessageCloud SMS
// gateway (gateway.php).
//
// A message is assembled with value-returning setters, resolved into a full
// parameter set on Send, delivered with a single GET and reported back as a
// Result. Local validation problems are returned as *ValidationError; the
// gateway's own rejections are never errors and are read from the Result.
package messagecloud
