package output

// stylesheet is inlined into every report so the document has no external
// references.
const stylesheet = `
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,"Helvetica Neue",Arial,sans-serif;line-height:1.6;color:#333;background:#f5f5f5;padding:20px;transition:padding-left .3s ease}
body.toc-open{padding-left:370px}
.toc-toggle{position:fixed;left:20px;top:20px;background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);color:#fff;border:none;padding:12px 20px;border-radius:25px;cursor:pointer;z-index:1001;font-weight:600;box-shadow:0 2px 8px rgba(102,126,234,.3);transition:all .3s ease}
.toc-toggle::before{content:"\2630";margin-right:8px}
body.toc-open .toc-toggle{left:370px}
body.toc-open .toc-toggle::before{content:"\2715"}
.toc-sidebar{position:fixed;left:-350px;top:0;width:350px;height:100vh;background:#fff;box-shadow:2px 0 10px rgba(0,0,0,.1);overflow-y:auto;z-index:1000;transition:left .3s ease;padding:20px}
.toc-sidebar.open{left:0}
.toc-header{font-size:1.3em;font-weight:700;color:#2c3e50;margin-bottom:20px;padding-bottom:15px;border-bottom:2px solid #3498db}
.toc-section{margin-bottom:20px}
.toc-section-title{display:block;font-weight:600;color:#2c3e50;font-size:.95em;margin-bottom:8px;padding:8px 12px;background:#f8f9fa;border-radius:4px;text-decoration:none}
.toc-section-title:hover{background:#e9ecef}
.toc-items{margin-left:15px;margin-top:5px}
.toc-item{display:flex;align-items:center;padding:6px 10px;margin:3px 0;border-radius:4px;font-size:.9em;color:inherit;text-decoration:none;transition:all .2s}
.toc-item:hover{background:#f8f9fa;transform:translateX(5px)}
.toc-item-status{display:inline-block;padding:3px 8px;border-radius:12px;font-size:.75em;font-weight:600;margin-right:8px;min-width:50px;text-align:center;flex-shrink:0}
.toc-item-status.ok{background:#a8d5ba;color:#0d3d1a}
.toc-item-status.noncompliant{background:#f0b3b8;color:#5a0f15}
.toc-item-status.info{background:#ffd966;color:#6b5200}
.toc-item-status.na{background:#c8ccd0;color:#2d3236}
.toc-item-status.other{background:#e9ecef;color:#495057}
.toc-item-label{flex:1;overflow:hidden;text-overflow:ellipsis;white-space:nowrap}
.container{max-width:1400px;margin:0 auto;background:#fff;padding:40px;box-shadow:0 2px 10px rgba(0,0,0,.1);border-radius:8px}
.header{border-bottom:3px solid #2c3e50;padding-bottom:30px;margin-bottom:40px;display:flex;align-items:center;justify-content:space-between;gap:30px}
.header h1{color:#2c3e50;font-size:2.5em;flex:1}
.header-logo{max-width:400px;height:auto}
.metadata{display:grid;grid-template-columns:repeat(auto-fit,minmax(250px,1fr));gap:12px;margin-bottom:25px}
.metadata-item{padding:10px 12px;background:#f8f9fa;border-left:3px solid #3498db;border-radius:3px}
.metadata-label{font-weight:600;color:#555;font-size:.8em;text-transform:uppercase;letter-spacing:.3px}
.metadata-value{font-size:.95em;color:#2c3e50;margin-top:3px;white-space:pre-wrap}
.filter-container{padding:25px;border-radius:8px;box-shadow:0 2px 10px rgba(0,0,0,.1);margin:30px 0;border-left:4px solid #3498db}
.filter-title{font-size:1.3em;font-weight:600;color:#2c3e50;margin-bottom:20px}
.filter-options{display:flex;flex-wrap:wrap;gap:15px}
.filter-option{display:flex;align-items:center;gap:8px;padding:12px 20px;border:2px solid #e9ecef;border-radius:25px;cursor:pointer;font-weight:600;user-select:none;transition:all .2s}
.filter-option input{width:20px;height:20px;cursor:pointer}
.filter-count{font-weight:400;color:#555}
.filter-ok{border-color:#28a745}.filter-ok.active{background:#a8d5ba}
.filter-noncompliant{border-color:#dc3545}.filter-noncompliant.active{background:#f0b3b8}
.filter-info{border-color:#ffc107}.filter-info.active{background:#ffd966}
.filter-na{border-color:#6c757d}.filter-na.active{background:#c8ccd0}
.filter-stats{margin-top:15px;padding:15px;background:#f8f9fa;border-radius:6px;font-size:.95em;color:#6c757d}
.section.hidden,.item.hidden{display:none}
.section{margin:50px 0}
.section-header{background:linear-gradient(135deg,#2c3e50 0%,#34495e 100%);color:#fff;padding:20px 25px;border-radius:8px 8px 0 0;font-size:1.5em;font-weight:600}
.section-content{border:1px solid #ddd;border-top:none;border-radius:0 0 8px 8px;padding:20px;background:#f8f9fa}
.section.title-page .section-content{padding:12px}
.section.title-page .item{padding:8px 12px;margin-bottom:8px;display:grid;grid-template-columns:200px 1fr;gap:15px;align-items:start}
.section.title-page .item-label{font-size:.9em;margin-bottom:0;padding:8px 12px;border-left-width:3px}
.section.title-page .item-value,.section.title-page .item-notes{margin:0;padding:8px 12px;background:none;border:none;font-size:.9em;grid-column:2}
.section.title-page .images-grid{grid-column:1/-1;margin-top:8px}
.item{padding:30px;margin-bottom:20px;background:#fff;border:2px solid #e9ecef;border-radius:8px;box-shadow:0 2px 4px rgba(0,0,0,.05);transition:background .5s,transform .3s}
.item:last-child{margin-bottom:0}
.flash{background:#fff3cd!important}
.item.flash{transform:scale(1.02)}
.item-label{font-size:1.1em;font-weight:600;color:#2c3e50;margin-bottom:15px;line-height:1.4;background:#dde1e7;padding:12px 15px;border-radius:6px;border-left:4px solid #3498db}
.item-value{display:inline-block;padding:8px 16px;border-radius:20px;font-weight:600;margin:10px 0;white-space:pre-wrap}
.status-ok{background:#a8d5ba;color:#0d3d1a;border:1px solid #85c49a}
.status-noncompliant{background:#f0b3b8;color:#5a0f15;border:1px solid #e89399}
.status-info{background:#ffd966;color:#6b5200;border:1px solid #ffc933}
.status-na{background:#c8ccd0;color:#2d3236;border:1px solid #adb2b8}
.item-notes{background:#fff9e6;border-left:4px solid #ffc107;padding:15px;margin:15px 0;border-radius:4px;white-space:pre-wrap}
.cjk{color:#dc3545;font-weight:600}
.images-grid{display:grid;grid-template-columns:repeat(3,1fr);gap:10px;margin-top:15px}
.image-container{position:relative;overflow:hidden}
.image-container img{width:100%;height:400px;object-fit:contain;display:block;cursor:pointer}
.lightbox{display:none;position:fixed;inset:0;background:rgba(0,0,0,.9);z-index:1002;justify-content:center;align-items:center;padding:20px}
.lightbox.active{display:flex}
.lightbox img{max-width:95%;max-height:95%;object-fit:contain;border-radius:4px}
.lightbox-close{position:absolute;top:20px;right:40px;color:#fff;font-size:40px;cursor:pointer}
@media (max-width:768px){
body{padding:10px}
.container{padding:20px}
.header{flex-direction:column;align-items:flex-start}
.header h1{font-size:1.8em}
.header-logo{max-width:250px}
.metadata{grid-template-columns:1fr}
.images-grid{grid-template-columns:repeat(2,1fr);gap:8px}
.image-container img{height:300px}
}
@media print{
.filter-container,.lightbox,.toc-sidebar,.toc-toggle{display:none!important}
body{background:#fff;padding:0!important}
.container{box-shadow:none;padding:20px;max-width:100%}
.item,.images-grid,.image-container{break-inside:avoid;page-break-inside:avoid}
.item{margin-bottom:15px}
.item.page-break-after,.item.page-break-after-small{break-after:page;page-break-after:always}
.section-header,.item-label{break-after:avoid;page-break-after:avoid}
}
`

// script binds the status filter, navigation, lightbox and Escape handling.
// Items with status "other" have no toggle and stay visible.
const script = `
var activeFilters = new Set(['ok', 'noncompliant', 'info', 'na', 'other']);

function applyFilters() {
  var visible = 0, total = 0;
  document.querySelectorAll('.item').forEach(function (item) {
    total++;
    var on = activeFilters.has(item.getAttribute('data-status'));
    item.classList.toggle('hidden', !on);
    if (on) visible++;
  });
  document.querySelectorAll('.section').forEach(function (s) {
    s.classList.toggle('hidden', s.querySelectorAll('.item:not(.hidden)').length === 0);
  });
  document.getElementById('filter-stats').textContent = visible === total
    ? 'Showing all ' + total + ' items'
    : 'Showing ' + visible + ' of ' + total + ' items';
}

document.querySelectorAll('.filter-option input[data-filter]').forEach(function (cb) {
  cb.addEventListener('change', function () {
    var f = cb.getAttribute('data-filter');
    if (cb.checked) activeFilters.add(f); else activeFilters.delete(f);
    cb.parentElement.classList.toggle('active', cb.checked);
    applyFilters();
  });
});

function toggleTOC() {
  document.getElementById('toc-sidebar').classList.toggle('open');
  document.body.classList.toggle('toc-open');
}

document.querySelectorAll('#toc-sidebar a[data-scroll]').forEach(function (a) {
  a.addEventListener('click', function (e) {
    var el = document.getElementById(a.getAttribute('href').slice(1));
    if (!el) return;
    e.preventDefault();
    el.scrollIntoView({behavior: 'smooth', block: a.getAttribute('data-scroll') === 'item' ? 'center' : 'start'});
    el.classList.add('flash');
    setTimeout(function () { el.classList.remove('flash'); }, 1500);
  });
});

function openLightbox(src) {
  document.getElementById('lightbox-img').src = src;
  document.getElementById('lightbox').classList.add('active');
}

function closeLightbox() {
  document.getElementById('lightbox').classList.remove('active');
}

document.querySelectorAll('.image-container img').forEach(function (img) {
  img.addEventListener('click', function () { openLightbox(img.src); });
});
document.getElementById('lightbox').addEventListener('click', closeLightbox);

document.addEventListener('keydown', function (e) {
  if (e.key !== 'Escape') return;
  closeLightbox();
  var toc = document.getElementById('toc-sidebar');
  if (toc.classList.contains('open')) {
    toc.classList.remove('open');
    document.body.classList.remove('toc-open');
  }
});

applyFilters();
`
