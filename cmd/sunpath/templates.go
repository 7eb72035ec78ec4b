package main

const timeFormat = "2006-01-02 15:04 MST"

var textOutputTemplate = `
################################################################################
                          Sun Path Table for:
                    {{.Start}}
                                until:
                    {{.End}}
              --- For coordinates {{.Lat}}º, {{.Lon}}º at {{.Alt}} m ---
            algorithm: {{.Algorithm}}{{if ne .Refraction "none"}}, refraction: {{.Refraction}}{{end}}
{{if .Sunrise}}            sunrise {{.Sunrise}}, sunset {{.Sunset}}{{print "\n"}}{{end -}}
################################################################################
{{.Data}}
################################################################################

`
