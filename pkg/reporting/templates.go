/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML template for RoughRules reports. A single self-contained page with the
table summary and the induced rules grouped by order.
*/

package reporting

// reportTemplate is the HTML template for a report
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - RoughRules</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: #f4f5f6;
            color: #101F38;
        }

        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 20px;
        }

        .header {
            background: #ffffff;
            border-radius: 12px;
            padding: 24px;
            margin-bottom: 24px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.08);
        }

        .header h1 {
            font-size: 2rem;
            margin-bottom: 8px;
        }

        .header p {
            color: #718096;
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 16px;
            margin-bottom: 24px;
        }

        .stat-card {
            background: #ffffff;
            border-radius: 12px;
            padding: 16px;
            text-align: center;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.08);
        }

        .stat-value {
            font-size: 1.8rem;
            font-weight: 700;
            color: #8BC34A;
        }

        .order {
            background: #ffffff;
            border-radius: 12px;
            padding: 16px 24px;
            margin-bottom: 16px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.08);
        }

        .order h2 {
            font-size: 1.2rem;
            color: #2196F3;
            margin-bottom: 8px;
        }

        .order li {
            font-family: monospace;
            list-style: none;
            padding: 4px 0;
        }

        .warning {
            background: #FFC107;
            border-radius: 12px;
            padding: 16px 24px;
            margin-bottom: 16px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Algorithm: {{.Algorithm}}{{if .Source}} | Source: {{.Source}}{{end}}</p>
            <p>Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}} | Run: {{.RunID}} | Duration: {{.Duration}}</p>
        </div>

        <div class="stats">
            <div class="stat-card"><div class="stat-value">{{.Stats.Rows}}</div><div>Rows</div></div>
            <div class="stat-card"><div class="stat-value">{{.Stats.Attributes}}</div><div>Attributes</div></div>
            <div class="stat-card"><div class="stat-value">{{len .Stats.Concepts}}</div><div>Concepts</div></div>
            <div class="stat-card"><div class="stat-value">{{.TotalRules}}</div><div>Rules</div></div>
        </div>

        {{if .Unexplained}}
        <div class="warning">Unexplained rows: {{range $i, $row := .Unexplained}}{{if $i}}, {{end}}{{$row}}{{end}}</div>
        {{end}}

        <div class="order">
            <h2>All orders ({{.TotalRules}})</h2>
        </div>
        {{range .Groups}}
        <div class="order">
            <h2>Order {{.Scale}} ({{.Count}})</h2>
            <ul>
                {{range .Rules}}<li>{{.String}}</li>
                {{end}}
            </ul>
        </div>
        {{end}}
    </div>
</body>
</html>
`
