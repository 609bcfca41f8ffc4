package render

// DefaultPage is the embedded page shell used when the configuration
// names no template file. A custom template is plain HTML that must
// contain the {{TABLES}} placeholder and may contain {{TITLE}}; both are
// substituted literally, never parsed.
const DefaultPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{TITLE}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 24px auto; max-width: 1100px; padding: 0 12px; color: #222; }
h1 { font-size: 1.6em; }
h2 { margin-top: 28px; border-bottom: 2px solid #eee; padding-bottom: 4px; }
</style>
</head>
<body>
<h1>{{TITLE}}</h1>
{{TABLES}}
</body>
</html>
`

// tablesTemplate is the Go html/template for the report body: one
// section per pack followed by the optional all-items list. Row data
// flows through template escaping; the literal placeholders above never
// appear here.
const tablesTemplate = `{{range .Packs}}<h2>{{.Name}}</h2>
{{if .Description}}<p class="pack-desc">{{.Description}}</p>
{{end}}<div class="pack" id="{{.ID}}">
{{if .Err}}<p class="pack-error">⚠️ Could not scan this archive: {{.Err}}</p>
{{else}}<div class="controls">
  <label><input type="checkbox" class="toggle-grouping"{{if $.GroupChecked}} checked{{end}}> Group by model</label>
  <input type="text" class="filter-input" placeholder="Filter items / models / renames...">
</div>
<div class="tables-area">
<table class="{{$.TableClass}}" data-pack="{{.Name}}">
<thead><tr>{{range $.Columns}}<th draggable="true" class="col-header" data-role="{{.Role}}">{{.Label}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr class="data-row">{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</div>
{{end}}</div>
{{end}}{{if .ShowAllItems}}<details{{if .OpenDetails}} open{{end}}><summary>📋 All items ({{len .AllItems}})</summary>
<ul>
{{range .AllItems}}<li>{{.}}</li>
{{end}}</ul>
</details>
{{end}}`

// tableCSS styles the pack tables and controls.
const tableCSS = `
<style>
.default-table { border-collapse: collapse; width:100%; margin:6px 0; }
.default-table th, .default-table td { border:1px solid #ddd; padding:6px; text-align:left; }
.default-table th { background:#f6f6f6; }
.pack .controls { margin-bottom:6px; display:flex; gap:8px; align-items:center; }
.filter-input { flex:1; padding:6px; }
.pack-desc { color:#666; margin:2px 0 8px; }
.pack-error { color:#a40000; background:#fdeaea; padding:8px; border-radius:4px; }
.col-header.dragging { opacity:0.5; }
th.asc::after { content: " ▲"; }
th.desc::after { content: " ▼"; }
</style>
`

// tableJS wires up filtering, sorting, the grouping toggle and column
// drag-reorder. Everything is scoped per .pack container; the item column
// is located by its data-role so relabeled headers keep working.
const tableJS = `
<script>
document.addEventListener('DOMContentLoaded', function(){
  document.querySelectorAll('.pack').forEach(function(pack){
    const filter = pack.querySelector('.filter-input');
    const table = pack.querySelector('table');
    if(!filter || !table) return;
    filter.addEventListener('input', function(){
      const q = filter.value.trim().toLowerCase();
      table.querySelectorAll('tbody tr.data-row').forEach(function(tr){
        const text = tr.textContent.toLowerCase();
        tr.style.display = text.includes(q) ? '' : 'none';
      });
    });

    const toggle = pack.querySelector('.toggle-grouping');
    if(toggle){
      toggle.addEventListener('change', function(){
        const idx = Array.from(table.tHead.rows[0].cells).findIndex(th=>th.dataset.role === 'item');
        if(idx>=0){
          table.querySelectorAll('tbody tr').forEach(function(tr){
            const cell = tr.cells[idx];
            if(cell) cell.style.display = toggle.checked ? '' : 'none';
          });
          table.tHead.rows[0].cells[idx].style.display = toggle.checked ? '' : 'none';
        }
      });
      if(!toggle.checked) toggle.dispatchEvent(new Event('change'));
    }

    // Column indexes are looked up at event time because drag-reorder
    // changes them after the listeners are attached.
    const indexOf = th => Array.from(th.parentNode.cells).indexOf(th);
    table.querySelectorAll('th').forEach(function(th){
      th.style.cursor = 'pointer';
      th.addEventListener('click', function(){
        const colIndex = indexOf(th);
        const tbody = table.tBodies[0];
        const rows = Array.from(tbody.rows);
        const asc = !th.classList.contains('asc');
        tbody.append(...rows.sort(function(a,b){
          const A = a.cells[colIndex].textContent.trim().toLowerCase();
          const B = b.cells[colIndex].textContent.trim().toLowerCase();
          return (A>B?1:-1) * (asc?1:-1);
        }));
        table.querySelectorAll('th').forEach(h=>h.classList.remove('asc','desc'));
        th.classList.add(asc?'asc':'desc');
      });

      th.addEventListener('dragstart', function(e){
        e.dataTransfer.setData('text/plain', indexOf(th));
        th.classList.add('dragging');
      });
      th.addEventListener('dragend', function(){
        th.classList.remove('dragging');
      });
      th.addEventListener('dragover', function(e){
        e.preventDefault();
      });
      th.addEventListener('drop', function(e){
        e.preventDefault();
        const from = parseInt(e.dataTransfer.getData('text/plain'));
        const to = indexOf(th);
        if(from === to) return;
        const header = table.tHead.rows[0];
        const headerCells = Array.from(header.cells);
        const moved = headerCells.splice(from,1)[0];
        headerCells.splice(to,0,moved);
        header.innerHTML = '';
        headerCells.forEach(c=>header.appendChild(c));
        table.tBodies[0].querySelectorAll('tr').forEach(function(row){
          const cells = Array.from(row.cells);
          const mc = cells.splice(from,1)[0];
          cells.splice(to,0,mc);
          row.innerHTML = '';
          cells.forEach(c=>row.appendChild(c));
        });
      });
    });
  });
});
</script>
`
